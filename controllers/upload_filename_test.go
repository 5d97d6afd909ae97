package controllers

import (
	"testing"
	"time"
)

func TestUploadFilename(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	if got, want := uploadFilename(now, "shirt.png"), "1700000000000-shirt.png"; got != want {
		t.Errorf("uploadFilename() = %q, want %q", got, want)
	}

	// Path components in the client-supplied name must not escape the
	// upload directory.
	if got, want := uploadFilename(now, "../../etc/passwd"), "1700000000000-passwd"; got != want {
		t.Errorf("uploadFilename() = %q, want %q", got, want)
	}
}

package storage

import "testing"

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		filename string
		kind     Kind
		wantOK   bool
	}{
		{"cover.jpg", KindImage, true},
		{"COVER.PNG", KindImage, true},
		{"animation.webp", KindImage, true},
		{"clip.mp4", KindImage, false},
		{"script.sh", KindImage, false},
		{"noextension", KindImage, false},
		{"clip.mp4", KindVideo, true},
		{"clip.MOV", KindVideo, true},
		{"cover.jpg", KindVideo, false},
		{"payload.exe", KindVideo, false},
	}
	for _, tt := range tests {
		err := ValidateExtension(tt.filename, tt.kind)
		if tt.wantOK && err != nil {
			t.Errorf("ValidateExtension(%q, %d) = %v, want nil", tt.filename, tt.kind, err)
		}
		if !tt.wantOK && err == nil {
			t.Errorf("ValidateExtension(%q, %d) = nil, want error", tt.filename, tt.kind)
		}
	}
}

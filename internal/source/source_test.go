package source

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		uri     string
		want    Location
		wantErr bool
	}{
		{"traces/a.txt", Location{Scheme: SchemeFile, Name: "traces/a.txt"}, false},
		{"file:///tmp/a.txt", Location{Scheme: SchemeFile, Name: "/tmp/a.txt"}, false},
		{"s3://bucket/traces/a.txt.zst", Location{Scheme: SchemeS3, Bucket: "bucket", Name: "traces/a.txt.zst"}, false},
		{"gs://bucket/a.gz", Location{Scheme: SchemeGCS, Bucket: "bucket", Name: "a.gz"}, false},
		{"", Location{}, true},
		{"file://", Location{}, true},
		{"s3://bucket", Location{}, true},
		{"s3:///key", Location{}, true},
		{"ftp://host/a.txt", Location{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			got, err := Parse(tt.uri)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) should return error", tt.uri)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.uri, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.uri, got, tt.want)
			}
		})
	}
}

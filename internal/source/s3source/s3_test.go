package s3source

import "testing"

func TestOptions(t *testing.T) {
	var st settings
	for _, opt := range []Option{
		WithRegion("eu-west-1"),
		WithEndpoint("http://localhost:9000"),
	} {
		opt(&st)
	}

	if st.region != "eu-west-1" {
		t.Errorf("region = %q, want %q", st.region, "eu-west-1")
	}
	if st.endpoint != "http://localhost:9000" {
		t.Errorf("endpoint = %q, want %q", st.endpoint, "http://localhost:9000")
	}
}

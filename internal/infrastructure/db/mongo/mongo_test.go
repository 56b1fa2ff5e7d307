package mongo

import (
	"testing"
)

func TestClientOptionsDefaults(t *testing.T) {
	opts := clientOptions(Config{URI: "mongodb://localhost:27017", Database: "commerce"})

	if opts.AppName == nil || *opts.AppName != appName {
		t.Fatalf("AppName = %v, want %q", opts.AppName, appName)
	}
	if opts.MaxPoolSize == nil || *opts.MaxPoolSize != defaultMaxPoolSize {
		t.Fatalf("MaxPoolSize = %v, want %d", opts.MaxPoolSize, defaultMaxPoolSize)
	}
	if opts.RetryWrites == nil || !*opts.RetryWrites {
		t.Fatalf("RetryWrites = %v, want true", opts.RetryWrites)
	}
}

func TestClientOptionsPoolOverride(t *testing.T) {
	opts := clientOptions(Config{URI: "mongodb://localhost:27017", MaxPoolSize: 5})

	if opts.MaxPoolSize == nil || *opts.MaxPoolSize != 5 {
		t.Fatalf("MaxPoolSize = %v, want 5", opts.MaxPoolSize)
	}
}

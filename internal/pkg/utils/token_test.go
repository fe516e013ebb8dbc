package utils

import (
	"errors"
	"testing"

	"github.com/opsgain/portops/internal/pkg/constants"
	"github.com/spf13/viper"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")

	signed, err := GenerateAuthToken(&AuthTokenWrapper{Secret: "test-secret"})
	if err != nil {
		t.Fatalf("GenerateAuthToken: %v", err)
	}

	parsed, err := ParseAuthToken(signed)
	if err != nil {
		t.Fatalf("ParseAuthToken: %v", err)
	}
	if parsed.Secret != "test-secret" {
		t.Errorf("secret = %q, want test-secret", parsed.Secret)
	}
}

func TestParseAuthTokenRejectsTampered(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")

	signed, err := GenerateAuthToken(&AuthTokenWrapper{Secret: "test-secret"})
	if err != nil {
		t.Fatalf("GenerateAuthToken: %v", err)
	}

	viper.Set(constants.ViperSecretKey, "rotated-secret")

	if _, err := ParseAuthToken(signed); !errors.Is(err, constants.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestParseAuthTokenRejectsGarbage(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")

	if _, err := ParseAuthToken("not.a.token"); !errors.Is(err, constants.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

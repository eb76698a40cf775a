package openai

import "strings"

// Env is the configuration source the api key is looked up in. A
// *viper.Viper with AutomaticEnv satisfies it.
type Env interface {
	GetString(key string) string
}

// LookupAPIKey is a pure function of the environment. It's called at the start of
// every turn and the result is never cached, so a missing key is reported per turn.
func LookupAPIKey(env Env) (string, error) {
	if env == nil {
		return "", &MissingCredentialError{EnvVar: APIKeyEnv}
	}
	key := strings.TrimSpace(env.GetString(APIKeyEnv))
	if key == "" {
		return "", &MissingCredentialError{EnvVar: APIKeyEnv}
	}
	return key, nil
}

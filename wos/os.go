package wos

import (
	"fmt"
	"os"
	"strings"
)

// If s has a $ prefix then we assume
// that it is a placeholder and the actual
// value is in an env variable.
//
// An error is returned when the env variable is unset.
//
// if there is no $ prefix then s is returned
func Getenv(s string) (string, error) {
	if !strings.HasPrefix(s, "$") {
		return s, nil
	}
	name := strings.ToUpper(strings.TrimPrefix(s, "$"))
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("expected %s to be set", name)
	}
	return v, nil
}

type EnvString string

func (es *EnvString) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("EnvString must be a json string")
	}
	data = data[1 : len(data)-1] // remove quotes
	v, err := Getenv(string(data))
	if err != nil {
		return err
	}
	*es = EnvString(v)
	return nil
}

func (es EnvString) String() string {
	return string(es)
}

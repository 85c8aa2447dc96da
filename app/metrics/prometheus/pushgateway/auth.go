package pushgateway

import (
	"context"
)

//HiddenString hidden on print
type HiddenString string

//BasicAuth user+password, no auth is used when Username is empty
type BasicAuth struct {
	Username HiddenString
	Password HiddenString
}

//AuthProvider auth provider
type AuthProvider func(ctx context.Context) (BasicAuth, error)

//String Stringer
func (HiddenString) String() string {
	return "******"
}

//MarshalJSON json.Marshal-er
func (HiddenString) MarshalJSON() ([]byte, error) {
	return []byte(`"******"`), nil
}

package inject

import "encoding/base64"

func enc(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

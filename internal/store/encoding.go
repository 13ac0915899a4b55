package store

import "encoding/base64"

const adminPasswordSalt = "_autoluxe_secure_salt"

// EncodePassword is reversible base64, not a hash. The demo keeps credentials
// deliberately non-secure; the name makes that explicit.
func EncodePassword(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

func encodeAdminPassword(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password + adminPasswordSalt))
}

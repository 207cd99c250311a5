package session

const keyPrefix = "session:"

// Key derives the session key for an account. It is deterministic so the
// validation gate can recompute it from decoded token claims alone.
func Key(email, uuid string) string {
	return keyPrefix + email + ":" + uuid
}

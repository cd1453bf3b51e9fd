package admission

// AnonymousIdentity buckets callers for whom no identity could be
// resolved. Keeping them in a single shared quota is deliberate: an
// unresolvable caller must never bypass admission.
const AnonymousIdentity = "anonymous"

// Key builds the opaque admission key for an identity/action pair.
// Uniqueness of the pair is the only invariant: two actions by one
// identity, or one action by two identities, never share a counter.
func Key(identity, action string) string {
	if identity == "" {
		identity = AnonymousIdentity
	}

	return identity + ":" + action
}

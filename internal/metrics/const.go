package metrics

const Namespace = "volteryde_gate"

// Reason label values for CredentialRejectionsTotal.
const (
	RejectionMissing   = "missing"
	RejectionMalformed = "malformed"
	RejectionExpired   = "expired"
	RejectionUnknown   = "unknown"
)

package gate

// Kind tags the variant held by a Decision.
type Kind int

const (
	PassThrough Kind = iota
	IssueCredentialAndRedirect
	RedirectToLogin
	ClearAndRedirectToLogin
)

func (k Kind) String() string {
	switch k {
	case PassThrough:
		return "pass_through"
	case IssueCredentialAndRedirect:
		return "issue_credential_and_redirect"
	case RedirectToLogin:
		return "redirect_to_login"
	case ClearAndRedirectToLogin:
		return "clear_and_redirect_to_login"
	default:
		return "unknown"
	}
}

// Decision is the result of one gate evaluation. Location is the clean URL for
// IssueCredentialAndRedirect and the identity provider login URL for the login kinds.
// Credential is only set for IssueCredentialAndRedirect. Reason names the credential
// problem behind a login redirect.
type Decision struct {
	Kind       Kind
	Location   string
	Credential string
	Reason     error
}

func (d Decision) Redirects() bool {
	return d.Kind != PassThrough
}

func (d Decision) SetsCookie() bool {
	return d.Kind == IssueCredentialAndRedirect
}

func (d Decision) ClearsCookie() bool {
	return d.Kind == ClearAndRedirectToLogin
}

// Apply performs the cookie side effect carried by d and reports whether the caller
// must redirect to d.Location.
func (d Decision) Apply(jar Jar) bool {
	switch d.Kind {
	case IssueCredentialAndRedirect:
		jar.Set(d.Credential)
	case ClearAndRedirectToLogin:
		jar.Clear()
	}
	return d.Redirects()
}

// Jar is the write half of session.Jar.
type Jar interface {
	Set(credential string)
	Clear()
}

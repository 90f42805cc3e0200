package domain

// Credential is the bearer token handed out by the backend. It is requested
// again for every privileged call and never written anywhere.
type Credential string

func (c Credential) BearerHeader() string {
	return "Bearer " + string(c)
}

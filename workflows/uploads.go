package workflows

import "sync"

// Uploads tracks the documents attached during caregiver signup before the
// account exists: certificate names and the identity document. Signup reads
// the snapshot; a successful registration resets it.
type Uploads struct {
	mu           sync.Mutex
	certificates []string
	idDocument   string
}

func NewUploads() *Uploads {
	return &Uploads{}
}

// AddCertificate appends a certificate by display name.
func (u *Uploads) AddCertificate(name string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.certificates = append(u.certificates, name)
}

// RemoveCertificate drops the certificate at index. Out-of-range indexes are
// ignored.
func (u *Uploads) RemoveCertificate(index int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if index < 0 || index >= len(u.certificates) {
		return
	}
	u.certificates = append(u.certificates[:index], u.certificates[index+1:]...)
}

// Certificates returns a copy of the attached certificate names.
func (u *Uploads) Certificates() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]string, len(u.certificates))
	copy(out, u.certificates)
	return out
}

// SetIDDocument records the uploaded identity document name, replacing any
// previous one.
func (u *Uploads) SetIDDocument(name string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.idDocument = name
}

// RemoveIDDocument clears the identity document.
func (u *Uploads) RemoveIDDocument() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.idDocument = ""
}

// IDDocument returns the uploaded identity document name, empty when none.
func (u *Uploads) IDDocument() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.idDocument
}

// Reset drops everything after a completed signup.
func (u *Uploads) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.certificates = nil
	u.idDocument = ""
}

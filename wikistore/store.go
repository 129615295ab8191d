package wikistore

import "context"

// Result is the outcome of a write operation against the page store
// (§7: "Write failure ... the operation returns a Result with ok=false
// and a last-error string; generation continues for unrelated
// artifacts"). Callers never receive a Go error from a write -- only a
// Result -- so one failing artifact never aborts a batch.
type Result struct {
	OK        bool
	LastError string
}

// Succeeded returns the success Result.
func Succeeded() Result { return Result{OK: true} }

// Failed returns a failure Result carrying err's message.
func Failed(err error) Result {
	if err == nil {
		return Succeeded()
	}

	return Result{OK: false, LastError: err.Error()}
}

// PageStore is the consumed page-store contract (§6.1). Implementations
// are provided by the host; the compiler never talks to the wiki
// directly except through this interface.
type PageStore interface {
	Exists(ctx context.Context, title Title) (bool, error)
	Read(ctx context.Context, title Title) (content string, ok bool, err error)
	CreateOrUpdate(ctx context.Context, title Title, content, summary string) Result
	Delete(ctx context.Context, title Title, reason string) Result
	Purge(ctx context.Context, title Title) error
}

// SemanticStore is the consumed semantic-backend contract (§6.2). The
// backend processes property-type registration and annotation writes
// asynchronously; FlushPending blocks until its work queue is empty,
// which the layered installer (§4.10) calls between layers.
type SemanticStore interface {
	ListSubjectsInNamespace(ctx context.Context, namespace string) ([]Title, error)
	ReadProperty(ctx context.Context, subject Title, property string) ([]string, error)
	FlushPending(ctx context.Context) error
}

package resolver

// Status classifies the outcome of a resolution.
type Status int

const (
	// StatusFound means an existing file passed every check.
	StatusFound Status = iota
	// StatusNotFound means every candidate was probed and none exists.
	StatusNotFound
	// StatusRejected means the specifier or a candidate path violated a
	// validation or security rule.
	StatusRejected
)

// Request carries the inputs of one resolution. It is never mutated.
type Request struct {
	// Specifier is the raw import string as written in source.
	Specifier string
	// FromFile is the absolute path of the file containing the import.
	FromFile string
	// Root is the absolute workspace root. Resolution never walks above it.
	Root string
}

// Result is the terminal value of a resolution. Exactly one of Path,
// Candidates or Reason is meaningful, selected by Status.
type Result struct {
	Status Status
	// Path is the resolved absolute file path (StatusFound).
	Path string
	// Candidates lists every probed path in probe order (StatusNotFound).
	Candidates []string
	// Reason is a stable kebab-case rule name (StatusRejected).
	Reason string
}

func found(path string) Result {
	return Result{Status: StatusFound, Path: path}
}

func notFound(candidates []string) Result {
	return Result{Status: StatusNotFound, Candidates: candidates}
}

func rejected(reason string) Result {
	return Result{Status: StatusRejected, Reason: reason}
}

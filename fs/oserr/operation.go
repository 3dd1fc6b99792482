package oserr

// Operation names the user-level action a facade call attempted. It supplies
// the "<action> <noun> on|for" part of a diagnostic.
type Operation struct {
	// Action is the verb, e.g. "set".
	Action string
	// Noun is the object of the action, e.g. "UNIX mode".
	Noun string
	// Preposition joins the noun to the path: "on" or "for".
	Preposition string
	// Mutating operations report ENOENT as an OS failure rather than as
	// NOT_FOUND.
	Mutating bool
}

// String returns "<action> <noun>".
func (o Operation) String() string {
	return o.Action + " " + o.Noun
}

var (
	// OpStat is Files.Stat and Files.StatTarget.
	OpStat = Operation{Action: "get", Noun: "file details", Preposition: "for"}
	// OpGetMode is Files.GetMode.
	OpGetMode = Operation{Action: "get", Noun: "UNIX mode", Preposition: "on"}
	// OpSetMode is Files.SetMode.
	OpSetMode = Operation{Action: "set", Noun: "UNIX mode", Preposition: "on", Mutating: true}
	// OpCreateSymlink is Files.Symlink.
	OpCreateSymlink = Operation{Action: "create", Noun: "symlink", Preposition: "for", Mutating: true}
	// OpReadLink is Files.ReadLink.
	OpReadLink = Operation{Action: "read", Noun: "symlink", Preposition: "for"}
)

// System call names used in the "could not <call> file" clause.
const (
	CallStat     = "stat"
	CallLstat    = "lstat"
	CallChmod    = "chmod"
	CallSymlink  = "symlink"
	CallReadlink = "readlink"
)

package mirror

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// account is the main introspection fixture: a mix of exported, unexported,
// tagged and untagged fields.
type account struct {
	Name    string `json:"name" inject:""`
	Age     int    `json:"age,omitempty"`
	Email   string
	balance float64 //nolint:unused // exists to exercise unexported handling
}

// wallet is a second fixture used for cross-type mismatch cases.
type wallet struct {
	Owner *account
	Coins []string
}

// badge is a tiny named type for type-path cases.
type badge struct{ ID int }

// Stats is embedded by pointer into profile to exercise promoted fields.
type Stats struct{ Wins int }

// profile promotes Stats fields through an embedded pointer, which may be nil.
type profile struct {
	*Stats
	Label string
}

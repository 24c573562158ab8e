package di

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// log is the interface fixture; injected via ProvideAs.
type log interface {
	Infof(format string, args ...any)
}

// memLogger records calls so tests can assert injection actually happened.
type memLogger struct {
	lines []string
}

func (l *memLogger) Infof(format string, _ ...any) {
	l.lines = append(l.lines, format)
}

// userStore is a plain pointer dependency.
type userStore struct {
	dsn string
}

func newUserStore() *userStore {
	return &userStore{dsn: "mem://users"}
}

// userService is the injection target: one interface field, one pointer
// field, one named field, and one untouched field.
type userService struct {
	Log     log        `inject:""`
	Store   *userStore `inject:""`
	Replica *userStore `inject:"store.replica"`
	Note    string
}

// orphanService has a dependency nothing provides.
type orphanService struct {
	Store *userStore `inject:""`
}

// sealedBox has an unexported tagged field, which injection must refuse.
type sealedBox struct {
	store *userStore `inject:""` //nolint:unused // exercises the unexported path
}

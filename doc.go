// Package mirror is the root of a small reflection toolkit for Go.
//
// This repository demonstrates two halves of the same idea:
//
//   - dynamic reflection: inspecting and mutating values at run time —
//     struct descriptors, field access by name, dynamic struct building
//     (this package)
//
//   - static reflection: deriving the same descriptors at build time via
//     code generation, so no field walking happens at run time (cmd/derive)
//
// On top of the reflection core sits a deliberately small DI container
// (package di) whose registry is keyed by type-path strings such as
// "examples.Logger". Dependencies are provided explicitly, the container is
// sealed, and tagged struct fields are injected by reference. There is no
// automatic registration and no casting between dynamic and static types:
// a lookup either yields a value of the stored type or reports a typed error.
//
// Start with the examples in the repo for end-to-end wiring style.
//
// Layout:
//   - mirror (this package): type paths, descriptors, dynamic builder
//   - di: type-path keyed container with tag-driven field injection
//   - cmd/derive: static descriptor generator
//   - examples/*: runnable demonstration (toy services + composition root)
package mirror

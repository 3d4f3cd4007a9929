// Package environ composes the simulation search-path environment.
//
// A Profile is an ordered list of Assignments. Compose applies them to a
// copy of an environment mapping and never touches the real process
// environment; Apply is the only function here with side effects.
//
// Composition is literal:
//
//   - a prepend assignment yields "e1:e2:...:prior", even when prior is
//     empty, which leaves a trailing empty segment
//   - a set assignment overwrites the variable with its single entry
//   - nothing is deduplicated, normalized or checked against the filesystem
//
// Composing twice therefore duplicates every prepended entry. Callers that
// re-source the output in a long-lived shell get the same accumulation the
// original shell script produced.
package environ

// Package reducer evaluates contact networks.
//
// A Reducer owns a graph of contacts and reduces it to a single value of the
// domain type on demand. Evaluation is a synchronous recursive walk:
//   - A leaf contact (no out-edges) is evaluated from its own program, state
//     and input values.
//   - An internal contact folds its children: the fold starts from the
//     contact's program value and transitions exactly once, on the first
//     child whose result disagrees with it. The contact's state value is
//     then applied to the folded result.
//
// For the built-in boolean domain this makes program select the fold
// (0 folds as OR, 1 as AND) and state negate the result, so series/parallel
// contact arrangements yield the familiar AND/OR/NAND/NOR gates.
//
// Domain behavior enters through two small capabilities, Transition and
// Output, so the same engine reduces non-boolean alphabets.
package reducer

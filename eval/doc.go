// Package eval evaluates infix arithmetic and boolean expressions over
// arbitrary precision decimals.
//
// Expressions are tokenized with a regular grammar and evaluated by a
// top-down operator precedence parser. Numbers, parentheses, function
// calls, and user supplied variables combine with these operators, from
// loosest to tightest binding:
//
//  | Operator      | Binding | Meaning                                      |
//  |---------------|---------|----------------------------------------------|
//  | ||            | 10      | left if nonzero, else right                  |
//  | &&            | 20      | left if zero, else right                     |
//  | == !=         | 30      | equality, 1 or 0                             |
//  | < <= > >=     | 40      | comparison, 1 or 0                           |
//  | + -           | 50      | addition, subtraction                        |
//  | * / %         | 60      | multiplication, division, remainder          |
//  | unary + - !   | 70      | identity, negation, logical not              |
//  | ^             | 80      | exponentiation, right associative            |
//  | √             |         | prefix square root                           |
//
// Both sides of && and || are always evaluated; only the returned
// operand is selected. The literal ** is accepted as a spelling of ^.
//
// Implicit multiplication inserts a * between a number, variable, or
// closing parenthesis and a following identifier, (, √, or unary !, so
// 2x, (2)(x), and 2√9 all multiply.
//
// A scope maps identifiers to decimal values or host functions. Values
// may be re-bound in place between evaluations without re-tokenizing the
// expression; bindings never change kind and no names may be added after
// the scope is installed.
//
// The evaluator carries the last installed scope and token list and is
// not safe for concurrent use; use one evaluator per goroutine or an
// external lock.
package eval

// Package predicate defines the season-versioned legality rules of a group
// draw.
//
// A Predicate answers "may team go into group g right now?" for one draw
// state. Rules are small strategy values (CountryClash, ForbiddenPairs,
// PairingHalves, ConfederationCap) combined into a RuleSet; New selects the
// rule family of a competition stage (a closed set of Variants) and
// parameterises it by season. Registry memoises the result per season.
//
// Every rule also exposes Key, the team attribute it reads. The legality
// search treats teams with equal RuleSet keys as interchangeable.
package predicate

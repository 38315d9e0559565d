// Package days spreads the games of each matchday over calendar days.
//
// Days are filled greedily: marquee (TV) games first, round-robin across the
// days that still have room under the per-day cap, then ordinary games in
// fixture order. The TV cap is soft: when a matchday carries more marquee
// games than Days × cap, the cap is raised evenly and Result.Relaxed is set.
// Day sizes are hard: every day gets exactly its target number of games.
package days

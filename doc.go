// Package hillclimb finds fewest-move routes across elevation maps where
// each step may climb at most one level.
//
// What is inside?
//
//	heightmap/       parse 'a'..'z' maps with 'S'/'E' markers into an immutable Grid
//	climb/           uniform-cost search: ShortestPath, FewestStepsFromLowest, RenderPath
//	cmd/hillclimb/   command that reads a map and prints both answers
//	examples/        runnable scenarios
//
// Quick ASCII example:
//
//	Sabqponm        v..v<<<<
//	abcryxxl        >v.vv<<^
//	accszExk   →    .>vv>E^^
//	acctuvwj        ..v>>>^^
//	abdefghi        ..>>>>>^
//
// shows a 31-move route from S to E.
//
//	go get github.com/katalvlaran/hillclimb
package hillclimb

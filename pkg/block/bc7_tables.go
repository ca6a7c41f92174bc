package block

// bc7ModeInfo captures the per-mode field widths used to lay out a BC7
// block's bitstream: NS (subset count), PB (partition-id bits), RB
// (rotation bits), ISB (index-selection bit), CB/AB (color/alpha bits
// per channel), EPB/SPB (per-endpoint / shared p-bits), IB/IB2 (primary
// and secondary index widths).
//
// Values follow the published BC7 mode table (DirectX BC7 format
// reference); see DESIGN.md for the partition/anchor table caveat.
type bc7ModeInfo struct {
	NS, PB, RB, ISB, CB, AB, EPB, SPB, IB, IB2 int
}

var bc7Modes = [8]bc7ModeInfo{
	{NS: 3, PB: 4, RB: 0, ISB: 0, CB: 4, AB: 0, EPB: 1, SPB: 0, IB: 3, IB2: 0},
	{NS: 2, PB: 6, RB: 0, ISB: 0, CB: 6, AB: 0, EPB: 0, SPB: 1, IB: 3, IB2: 0},
	{NS: 3, PB: 6, RB: 0, ISB: 0, CB: 5, AB: 0, EPB: 0, SPB: 0, IB: 2, IB2: 0},
	{NS: 2, PB: 6, RB: 0, ISB: 0, CB: 7, AB: 0, EPB: 1, SPB: 0, IB: 2, IB2: 0},
	{NS: 1, PB: 0, RB: 2, ISB: 1, CB: 5, AB: 6, EPB: 0, SPB: 0, IB: 2, IB2: 3},
	{NS: 1, PB: 0, RB: 2, ISB: 0, CB: 7, AB: 8, EPB: 0, SPB: 0, IB: 2, IB2: 2},
	{NS: 1, PB: 0, RB: 0, ISB: 0, CB: 7, AB: 7, EPB: 1, SPB: 0, IB: 4, IB2: 0},
	{NS: 2, PB: 6, RB: 0, ISB: 0, CB: 5, AB: 5, EPB: 1, SPB: 0, IB: 2, IB2: 0},
}

// bc7Factors2/3/4 are the color-weight tables for 2/3/4-bit index fields.
var (
	bc7Factors2 = [4]int{0, 21, 43, 64}
	bc7Factors3 = [8]int{0, 9, 18, 27, 37, 46, 55, 64}
	bc7Factors4 = [16]int{0, 4, 9, 13, 17, 21, 26, 30, 34, 38, 43, 47, 51, 55, 60, 64}
)

func bc7Factor(width, index int) int {
	switch width {
	case 2:
		return bc7Factors2[index]
	case 3:
		return bc7Factors3[index]
	case 4:
		return bc7Factors4[index]
	default:
		return 0
	}
}

// bc7Line is one 2-subset partition's separating half-plane over the
// 4x4 texel grid: texel (x,y) falls in subset 1 when a*x+b*y >= th,
// subset 0 otherwise. Because th is always positive, (0,0) always
// evaluates to 0 < th, so texel 0 is always subset 0 — the invariant
// BC7's own anchor-0 convention requires.
type bc7Line struct{ a, b, th int }

// bc7Line3 is a 3-subset partition: a first half-plane (a1,b1,th1)
// carves out subset 2, then a second half-plane (a2,b2,th2) splits the
// remainder into subset 0/1.
type bc7Line3 struct{ a1, b1, th1, a2, b2, th2 int }

// bc7partitionDirs enumerates slope/direction vectors used to build the
// 64 two-subset and 64 three-subset partitions below: each direction
// is paired with each threshold in bc7partitionThresholds to give one
// half-plane cut of the 4x4 grid. The resulting splits are not all
// distinct, and some ids leave a subset with no texels (two-subset id
// 48, direction {1,0} at threshold 4, puts every texel in subset 0).
// See DESIGN.md for why these are generated cuts rather than
// Microsoft's literal 64-entry enumeration.
var bc7partitionDirs = [16][2]int{
	{1, 0}, {0, 1}, {1, 1}, {1, -1},
	{2, 1}, {1, 2}, {2, -1}, {1, -2},
	{3, 1}, {1, 3}, {3, -1}, {1, -3},
	{2, 3}, {3, 2}, {2, -3}, {3, -2},
}

var bc7partitionThresholds = [4]int{1, 2, 3, 4}

var bc7Lines2 = genBC7Lines2()

func genBC7Lines2() [64]bc7Line {
	var lines [64]bc7Line
	i := 0
	for _, th := range bc7partitionThresholds {
		for _, dir := range bc7partitionDirs {
			lines[i] = bc7Line{a: dir[0], b: dir[1], th: th}
			i++
		}
	}
	return lines
}

var bc7Lines3 = genBC7Lines3()

func genBC7Lines3() [64]bc7Line3 {
	var lines [64]bc7Line3
	i := 0
	for _, th2 := range bc7partitionThresholds {
		for _, dir := range bc7partitionDirs {
			// The first cut uses the direction seven entries further on
			// in bc7partitionDirs (wrapping around), with a threshold
			// two higher than the second cut's.
			d2 := bc7partitionDirs[(i+7)%16]
			lines[i] = bc7Line3{
				a1: d2[0], b1: d2[1], th1: th2 + 2,
				a2: dir[0], b2: dir[1], th2: th2,
			}
			i++
		}
	}
	return lines
}

// bc7Partition assigns each of the 16 raster-order texels in a 4x4
// block to one of ns subsets (2 or 3) for the given partition-set id,
// by evaluating the id's half-plane cut(s) from bc7Lines2/bc7Lines3.
// Texel 0 always belongs to subset 0, matching the BC7/BC6H convention
// that subset 0's anchor is always texel 0 (guaranteed by construction
// here since every line's threshold is positive and (0,0) scores 0).
func bc7Partition(ns, id, texel int) int {
	if texel == 0 {
		return 0
	}
	x, y := texel%4, texel/4
	switch ns {
	case 1:
		return 0
	case 2:
		ln := bc7Lines2[id%64]
		if ln.a*x+ln.b*y >= ln.th {
			return 1
		}
		return 0
	case 3:
		ln := bc7Lines3[id%64]
		if ln.a1*x+ln.b1*y >= ln.th1 {
			return 2
		}
		if ln.a2*x+ln.b2*y >= ln.th2 {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// bc7Anchors returns, for each subset 0..ns-1, the raster index of its
// anchor texel: the first texel (in raster order) assigned to that
// subset. Subset 0's anchor is always 0 by bc7Partition's construction;
// a subset that receives no texels also gets anchor 0.
func bc7Anchors(ns, id int) []int {
	anchors := make([]int, ns)
	seen := make([]bool, ns)
	for t := 0; t < 16; t++ {
		s := bc7Partition(ns, id, t)
		if !seen[s] {
			seen[s] = true
			anchors[s] = t
		}
	}
	return anchors
}

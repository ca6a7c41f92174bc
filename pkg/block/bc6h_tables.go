package block

// bc6hModeInfo describes one of BC6H's 14 valid modes. SelBits/SelValue
// identify the mode from the block's leading mode-selector field: modes
// 0 and 1 are chosen by a 2-bit discriminator (value 0 or 1); every
// other mode is chosen by the full 5-bit field once the 2-bit
// discriminator is neither 0 nor 1 (spec.md §4.C: "Modes 0–3 (2-bit
// discriminator, values 00 and 01 map to modes 0 and 1) or 5-bit
// discriminator").
//
// NS is the subset count (1 or 2); Transformed marks endpoints 1..NS*2-1
// as signed deltas off endpoint 0 rather than independent values. EPB is
// the base (endpoint 0) precision per channel; DBr/DBg/DBb are the
// per-channel delta precisions used for every non-base endpoint when
// Transformed (spec.md §4.C lists these as distinct per channel, unlike
// a single shared delta width). IndexBits is 3 for every two-subset mode
// and 4 for every single-subset mode, matching the real format's
// trade-off between partition overhead and index precision.
//
// For every row except the untransformed single-subset mode (selector
// 3), SelBits + 3*EPB + (NS*2-1)*(DBr+DBg+DBb) (the mode-selector bits,
// plus one base endpoint, plus the deltas for the remaining NS*2-1
// endpoints; the untransformed selector-30 row lists its full 6-bit
// endpoint width as its DB fields) sums to exactly 77 for every
// two-subset mode and 65 for the other single-subset modes. The
// selector-3 row leaves its DB fields 0 and is read as two full 10-bit
// endpoints, 5 + 2*3*10 = 65 bits. These are exactly where spec.md
// §4.C places the partition-set-id field (bit 77) and the start of the
// index-bit stream (bit 82 with a partition, bit 65 without). That
// arithmetic identity is the cross-check this table was built against
// in the absence of a compiler to verify it directly.
type bc6hModeInfo struct {
	NS                 int
	Transformed        bool
	SelBits, SelValue  int
	EPB                int
	DBr, DBg, DBb      int
	IndexBits          int
	// ReverseDelta marks the two modes (raw 5-bit selector values 11 and
	// 15 in spec.md §9's Open Question 4) whose delta fields are stored
	// MSB-first rather than the stream's usual LSB-first order.
	ReverseDelta bool
}

// bc6hModes is indexed 0..13 in an arbitrary but fixed internal order;
// lookupBC6HMode resolves the wire-format selector bits to an index.
var bc6hModes = [14]bc6hModeInfo{
	{NS: 2, Transformed: true, SelBits: 2, SelValue: 0, EPB: 10, DBr: 5, DBg: 5, DBb: 5, IndexBits: 3},
	{NS: 2, Transformed: true, SelBits: 2, SelValue: 1, EPB: 7, DBr: 6, DBg: 6, DBb: 6, IndexBits: 3},
	{NS: 2, Transformed: true, SelBits: 5, SelValue: 2, EPB: 11, DBr: 5, DBg: 4, DBb: 4, IndexBits: 3},
	{NS: 2, Transformed: true, SelBits: 5, SelValue: 6, EPB: 11, DBr: 4, DBg: 5, DBb: 4, IndexBits: 3},
	{NS: 2, Transformed: true, SelBits: 5, SelValue: 10, EPB: 11, DBr: 4, DBg: 4, DBb: 5, IndexBits: 3},
	{NS: 2, Transformed: true, SelBits: 5, SelValue: 14, EPB: 9, DBr: 5, DBg: 5, DBb: 5, IndexBits: 3},
	{NS: 2, Transformed: true, SelBits: 5, SelValue: 18, EPB: 8, DBr: 6, DBg: 5, DBb: 5, IndexBits: 3},
	{NS: 2, Transformed: true, SelBits: 5, SelValue: 22, EPB: 8, DBr: 5, DBg: 6, DBb: 5, IndexBits: 3},
	{NS: 2, Transformed: true, SelBits: 5, SelValue: 26, EPB: 8, DBr: 5, DBg: 5, DBb: 6, IndexBits: 3},
	{NS: 2, Transformed: false, SelBits: 5, SelValue: 30, EPB: 6, DBr: 6, DBg: 6, DBb: 6, IndexBits: 3},
	{NS: 1, Transformed: false, SelBits: 5, SelValue: 3, EPB: 10, IndexBits: 4},
	{NS: 1, Transformed: true, SelBits: 5, SelValue: 7, EPB: 11, DBr: 9, DBg: 9, DBb: 9, IndexBits: 4},
	{NS: 1, Transformed: true, SelBits: 5, SelValue: 11, EPB: 12, DBr: 8, DBg: 8, DBb: 8, IndexBits: 4, ReverseDelta: true},
	{NS: 1, Transformed: true, SelBits: 5, SelValue: 15, EPB: 16, DBr: 4, DBg: 4, DBb: 4, IndexBits: 4, ReverseDelta: true},
}

// lookupBC6HMode resolves a 5-bit mode-selector field (as produced by
// reading 2 bits, and if those are neither 0 nor 1, reading 3 more and
// combining them into the full 5-bit value) to a *bc6hModeInfo, or nil
// for one of the 4 reserved/invalid 5-bit patterns (19, 23, 27, 31).
func lookupBC6HMode(sel2 int, have5 bool, sel5 int) *bc6hModeInfo {
	if !have5 {
		for i := range bc6hModes {
			if bc6hModes[i].SelBits == 2 && bc6hModes[i].SelValue == sel2 {
				return &bc6hModes[i]
			}
		}
		return nil
	}
	for i := range bc6hModes {
		if bc6hModes[i].SelBits == 5 && bc6hModes[i].SelValue == sel5 {
			return &bc6hModes[i]
		}
	}
	return nil
}

package diff

import "github.com/maxmalkin/sdiff/ir"

// edit script operations produced by backtracking the LCS table.
type editKind int

const (
	editKeep editKind = iota
	editInsert
	editDelete
)

type editOp struct {
	kind   editKind
	oldIdx int
	newIdx int
}

// arraysLCS aligns old and new by longest common subsequence, using
// the configured equality as the match predicate, then walks the edit
// script. A single differing field anywhere inside an element makes
// the whole element unmatched; there is no partial credit.
func (d *differ) arraysLCS(old, new []*ir.Node, path []string) {
	script := d.lcsScript(old, new)

	// cursor tracks the position a change would occupy in the new
	// array's coordinate space. Deletions are addressed at the cursor
	// and do not advance it.
	cursor := 0
	for _, op := range script {
		switch op.kind {
		case editKeep:
			d.nodes(old[op.oldIdx], new[op.newIdx], append(path, IndexSegment(op.newIdx)))
			cursor = op.newIdx + 1
		case editInsert:
			d.emit(append(path, IndexSegment(op.newIdx)), Added, nil, new[op.newIdx])
			cursor = op.newIdx + 1
		case editDelete:
			d.emit(append(path, IndexSegment(cursor)), Removed, old[op.oldIdx], nil)
		}
	}
}

// lcsScript builds the (n+1)x(m+1) dynamic-programming table and
// backtracks it into a forward-ordered edit script.
func (d *differ) lcsScript(old, new []*ir.Node) []editOp {
	n, m := len(old), len(new)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if d.equal(old[i-1], new[j-1]) {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	// Backtrack from the corner. On ties between moving left and
	// moving up, prefer the insert: this decides which side of an
	// ambiguous reorder is reported as added versus removed.
	var rev []editOp
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && d.equal(old[i-1], new[j-1]):
			rev = append(rev, editOp{kind: editKeep, oldIdx: i - 1, newIdx: j - 1})
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] >= dp[i-1][j]):
			rev = append(rev, editOp{kind: editInsert, newIdx: j - 1})
			j--
		default:
			rev = append(rev, editOp{kind: editDelete, oldIdx: i - 1})
			i--
		}
	}

	script := make([]editOp, len(rev))
	for k := range rev {
		script[k] = rev[len(rev)-1-k]
	}
	return script
}

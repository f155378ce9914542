package tss

import "errors"

// Every failure mode of the package surfaces as (a wrapped form of) exactly
// one of these sentinels, so callers can discriminate them with errors.Is.
var (
	// ErrInvalidParams reports an invalid threshold, share count, secret or
	// identifier at split time.
	ErrInvalidParams = errors.New("tss: invalid sharing parameters")

	// ErrShareFormat reports structurally malformed share bytes.
	ErrShareFormat = errors.New("tss: malformed share")

	// ErrShareSetMismatch reports shares mixing identifiers, hash
	// algorithms, thresholds or payload lengths.
	ErrShareSetMismatch = errors.New("tss: inconsistent share set")

	// ErrNotEnoughShares reports fewer distinct shares than the threshold
	// embedded in the share set.
	ErrNotEnoughShares = errors.New("tss: not enough shares")

	// ErrDuplicateShare reports two supplied shares carrying the same index.
	ErrDuplicateShare = errors.New("tss: duplicate share index")

	// ErrHashMismatch reports that the digest recomputed from the
	// reconstructed secret does not match the embedded one. This usually
	// means wrong or insufficient shares rather than transport corruption.
	ErrHashMismatch = errors.New("tss: reconstructed secret hash mismatch")
)

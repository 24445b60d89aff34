package closer

import (
	"fmt"
	"io"

	"seqkit/internal/logging"
)

// Quietly releases resource, best effort: a failure is logged at debug level and
// swallowed. It understands io.Closer, Close without error result (pgx.Rows) and Release
// (pooled connections). Anything else, nil included, is ignored.
//
// Use it on teardown paths where a release failure must not mask the outcome the caller
// is about to see.
func Quietly(resource any) {
	var err error
	switch r := resource.(type) {
	case nil:
		return
	case io.Closer:
		err = r.Close()
	case interface{ Close() }:
		r.Close()
	case interface{ Release() }:
		r.Release()
	default:
		return
	}

	if err != nil {
		logging.Debug().Err(err).
			Str("resource", fmt.Sprintf("%T", resource)).
			Stringer("family", FamilyOf(resource)).
			Msg("quiet close failed")
	}
}

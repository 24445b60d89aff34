// Package pgxseq is the pgx counterpart of sqlseq: it turns pgx.Rows into seqs sequences
// and ties the pooled connection they were read from to the sequence's lifetime.
//
//	s, err := pgxseq.QueryScan(ctx, pgxseq.FromPool(pool),
//		pgxseq.Text("select id, name from users where active"),
//		pgx.RowToStructByName[User])
//	if err != nil {
//		return err
//	}
//	defer s.Close()
package pgxseq

/*
Package sqlseq turns database/sql cursors into seqs sequences and ties the connection
they were read from to the sequence's lifetime.

[Rows], [Map] and [Scan] adapt a cursor the caller already holds. [Query] and
[QueryScan] run the whole acquisition chain: take a connection from a [Provider], open a
cursor on it with a [QueryFunc], and return a sequence whose Close releases the cursor and
then the connection.

	s, err := sqlseq.QueryScan(ctx, sqlseq.DB(db),
		sqlseq.Select(sq.Select("id", "name").From("users").Where(sq.Eq{"active": true})),
		func(c sqlseq.Cursor) (User, error) {
			var u User
			return u, c.Scan(&u.ID, &u.Name)
		})
	if err != nil {
		return err
	}
	defer s.Close()

	for batch, err := range seqs.Batch(s, 500).All() {
		...
	}

Driver failures on the data path (connecting, querying, advancing, scanning) are wrapped
into *seqs.ResourceError. Failures while releasing resources are logged and dropped.
*/
package sqlseq

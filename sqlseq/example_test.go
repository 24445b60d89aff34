package sqlseq_test

import (
	"context"
	"database/sql/driver"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"seqkit/seqs"
	"seqkit/sqlseq"
)

func ExampleQueryScan() {
	db, _ := newFakeDB(map[string]table{
		"SELECT id, name FROM users WHERE id > ?": {
			columns: []string{"id", "name"},
			rows: [][]driver.Value{
				{int64(1), "ada"}, {int64(2), "grace"}, {int64(3), "edsger"}, {int64(4), "barbara"},
			},
		},
	})
	defer db.Close()

	s, err := sqlseq.QueryScan(context.Background(), sqlseq.DB(db),
		sqlseq.Select(sq.Select("id", "name").From("users").Where(sq.Gt{"id": 0})),
		func(c sqlseq.Cursor) (string, error) {
			var (
				id   int64
				name string
			)
			err := c.Scan(&id, &name)
			return fmt.Sprintf("%d:%s", id, name), err
		})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer s.Close()

	for batch, err := range seqs.Batch(s, 3).All() {
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(batch)
	}
	// Output:
	// [1:ada 2:grace 3:edsger]
	// [4:barbara]
}

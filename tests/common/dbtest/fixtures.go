//go:build integration || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Catalog ids seeded by SeedReferenceData.
const (
	HouseID        int64 = 1
	RoomTypeDouble int64 = 3
	RoomTypeSuite  int64 = 4
	RoomDouble1    int64 = 21
	RoomDouble2    int64 = 22
	RoomSuite      int64 = 31
	RatePlanID     int64 = 7
	RateSingle     int64 = 70
	RateDouble     int64 = 71
)

// SeedReferenceData inserts one house with two room types, three rooms and a
// rate plan priced for 2024-06-10..12 (single 90/95/100, double 100/110/120).
func SeedReferenceData(db DBLike) error {
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO houses (id, name, tax_percent, currency, timezone) VALUES (1, 'Seaside', 10, 'EUR', 'UTC');
		INSERT INTO room_types (id, house_id, name) VALUES (3, 1, 'Double'), (4, 1, 'Suite');
		INSERT INTO rooms (id, house_id, room_type_id, name) VALUES (21, 1, 3, '101'), (22, 1, 3, '102'), (31, 1, 4, '201');
		INSERT INTO rate_plans (id, house_id, name, policy) VALUES (7, 1, 'Flexible', '{"name": "flexible"}');
		INSERT INTO rates (id, house_id, rate_plan_id, room_type_id, occupancy) VALUES (70, 1, 7, 3, 1), (71, 1, 7, 3, 2);
		INSERT INTO prices (rate_id, day, price) VALUES
		    (70, '2024-06-10', 90), (70, '2024-06-11', 95), (70, '2024-06-12', 100),
		    (71, '2024-06-10', 100), (71, '2024-06-11', 110), (71, '2024-06-12', 120);
		SELECT setval('houses_id_seq', 100), setval('room_types_id_seq', 100), setval('rooms_id_seq', 100),
		       setval('rate_plans_id_seq', 100), setval('rates_id_seq', 100);
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

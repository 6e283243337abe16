/*
Package trips loads taxi trip snapshots and the zone lookup table into an
in-memory columnar store.

A Store holds exactly two snapshots and the zone table. It is built once,
completely, and is read-only afterwards:

	store, err := trips.NewStoreFromConfig(ctx, cfg.Data)
	if err != nil {
	    log.Fatal(err) // nothing is served from a partial store
	}

	for _, snap := range store.Snapshots() {
	    fmt.Println(snap.Label, snap.Len())
	}

# Sources

A source is a local path or an http(s) URL. Trip snapshots may be Apache
Parquet (.parquet) or CSV (.csv); the zone lookup is CSV. Remote sources are
downloaded completely before they are decoded.

# Columns

Each snapshot keeps one typed column per attribute. A null or unparseable cell
only invalidates that cell; aggregations skip the record for the views that
need the field.

Required trip columns (case-insensitive):

  - tpep_pickup_datetime
  - PULocationID
  - fare_amount, tip_amount, total_amount
  - trip_distance
  - payment_type

Required zone columns: LocationID, Borough, Zone.

# Thread Safety

A Store is safe for concurrent reads once NewStore or NewStoreFromConfig has
returned.
*/
package trips

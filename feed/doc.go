/*
Package feed loads the station and trip datasets into an in-memory Index.

Sources are interchangeable: CSV or GBFS-style JSON fetched over HTTP or read
from local files, a SQLite database, or a Postgres database. Whatever the
source, station records are normalized once at load time (two field-naming
conventions are accepted) and trips get parsed timestamps.

Loading is all-or-nothing: any fetch or parse failure returns an error and no
Index, so downstream rendering never sees partial data. Parse the datasets
once at startup and keep the Index in memory; it is static for the session.
*/
package feed

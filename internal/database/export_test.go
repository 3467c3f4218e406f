package database

var PostgresLogFields = postgresLogFields

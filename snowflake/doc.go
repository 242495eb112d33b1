// Package snowflake provides the 64-bit snowflake identifier used as a pagination anchor.
//
// A snowflake embeds its creation timestamp (milliseconds since Epoch) in the high 42 bits,
// followed by 5 worker bits, 5 process bits and a 12 bit increment. IDs are therefore
// totally ordered by creation time when compared as unsigned integers.
package snowflake

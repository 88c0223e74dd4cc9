// Package view implements the runtime substrate for fixed-layout binary
// messages: non-owning views over caller-held buffers, with all layout
// knowledge supplied by generated accessor code.
//
// A message buffer starts with a header composite, followed by a fixed-size
// block of scalar fields, then repeating groups and variable-length data
// members. Every view here is a thin range over that buffer plus the layout
// constants needed to address its members; construction never reads bytes,
// and every access re-validates against the buffer end.
//
// Access comes in two styles. Stateless accessors (GetValue, FirstTail,
// TailAfter) address members from scratch each time, paying a walk over
// preceding variable-size members. Cursor accessors carry a position through
// sequential decoding or encoding, making a full pass over a message linear;
// the Mode constants select how each access addresses its member and moves
// the cursor.
//
// Out-of-contract access, such as indexing past an array's length or reading
// through a detached cursor, is reported through the fault package and does
// not return. Untrusted input is validated up front with SizeBytesChecked,
// which walks the declared structure against a byte budget and reports
// invalid instead of faulting.
package view

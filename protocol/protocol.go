package protocol

// Reference:
//   BITS: each hex digit of the input is 4 bits, most significant first.
//   The outermost packet may be followed by zero padding, which is ignored.

// PACKET Protocol:
//  VERSION | TYPE_ID | BODY
//     3    |    3    |  -

// LITERAL BODY (TYPE_ID = 4):
//  CONTINUE | DATA | CONTINUE | DATA | ... | 0 | DATA
//     1     |  4   |    1     |  4   | ... | 1 |  4

// OPERATOR BODY (TYPE_ID != 4):
//  LENGTH_TYPE_ID = 0:  0 | TOTAL_BIT_LENGTH | SUB_PACKETS
//                       1 |       15         |  TOTAL_BIT_LENGTH
//  LENGTH_TYPE_ID = 1:  1 | SUB_PACKET_COUNT | SUB_PACKETS
//                       1 |       11         |  -

// Copyright © 2023 by Andrew Ekstedt <andrew.ekstedt@gmail.com>
// All rights reserved. See LICENSE for details.

package ascon

// Round constants, Section 2.6.1, Table 4.
// p12 uses all of them; the reduced p8 and p6 would start at 4 and 6,
// but nothing here uses a reduced permutation.
var roundc = [12]uint8{
	0xf0, 0xe1, 0xd2, 0xc3, 0xb4, 0xa5,
	0x96, 0x87, 0x78, 0x69, 0x5a, 0x4b,
}

/*
go-walkguide turns the segmentation results of a single camera frame into
navigation advice for a mobility assistance device.

Each frame is parsed into objects (see the parser subpackage), the walkable
ground region is located and every obstacle and human is scored as a threat
using its relation to the walk area, its distance and its horizontal position
(see the spatial subpackage).  The highest scoring threat is mapped through
an ordered rule table to one Instruction and WarningLevel.

The Engine holds no per frame state, so a single Engine may be shared by
goroutines processing independent camera streams.

See example code and usage in the examples subdirectory.
*/
package walkguide

package arena_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/juditrie/pkg/arena"
)

func TestPool(t *testing.T) {
	Convey("Given a Pool of int", t, func() {
		p := arena.NewPool[int](4)

		Convey("When allocating a handle", func() {
			h, v := p.Alloc()

			Convey("Then the handle is non-zero and the value is zeroed", func() {
				So(h, ShouldNotEqual, 0)
				So(*v, ShouldEqual, 0)
			})

			Convey("And Get resolves back to the same storage", func() {
				*v = 42
				So(*p.Get(h), ShouldEqual, 42)
			})
		})

		Convey("When allocating across a segment boundary", func() {
			handles := make([]uint32, 10)
			for i := range handles {
				h, v := p.Alloc()
				*v = i
				handles[i] = h
			}

			Convey("Then every handle resolves to its own distinct value", func() {
				for i, h := range handles {
					So(*p.Get(h), ShouldEqual, i)
				}
			})
		})

		Convey("When freeing a handle and allocating again", func() {
			h1, v1 := p.Alloc()
			*v1 = 7
			p.Free(h1)

			h2, v2 := p.Alloc()

			Convey("Then the freed handle is recycled", func() {
				So(h2, ShouldEqual, h1)
			})

			Convey("And the recycled storage is zeroed", func() {
				So(*v2, ShouldEqual, 0)
			})
		})

		Convey("When checking Len", func() {
			So(p.Len(), ShouldEqual, 0)
			p.Alloc()
			p.Alloc()
			So(p.Len(), ShouldEqual, 2)
		})
	})
}

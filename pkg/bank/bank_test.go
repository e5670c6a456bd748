package bank

import (
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wildfunctions/apcalc/pkg/expr"
)

func TestBank(t *testing.T) {
	Convey("Given a bank created from f = 2x+a+g(x)", t, func() {
		b, err := New('f', "2x+a+g(x)")
		So(err, ShouldBeNil)

		Convey("The seed name is bound as a defined function", func() {
			e, ok := b.Entry('f')
			So(ok, ShouldBeTrue)
			So(e.Letter, ShouldEqual, Function)
			So(e.Defined(), ShouldBeTrue)
			So(e.Expr.Equal(expr.MustParse("2x+a+g(x)")), ShouldBeTrue)
		})

		Convey("Referenced letters are entered as undefined", func() {
			a, ok := b.Entry('a')
			So(ok, ShouldBeTrue)
			So(a.Letter, ShouldEqual, Variable)
			So(a.Defined(), ShouldBeFalse)

			g, ok := b.Entry('g')
			So(ok, ShouldBeTrue)
			So(g.Letter, ShouldEqual, Function)
			So(g.Defined(), ShouldBeFalse)
		})

		Convey("The free variable is not entered", func() {
			_, ok := b.Entry('x')
			So(ok, ShouldBeFalse)
			So(b.Names(), ShouldResemble, []rune{'a', 'f', 'g'})
		})

		Convey("Looking up an undefined letter fails with UndefinedIdentifier", func() {
			_, err := b.Lookup('a')
			So(IsLookupError(err, ErrUndefinedIdentifier), ShouldBeTrue)
			So(err.Error(), ShouldEqual, `lookup 'a': undefined identifier`)
		})

		Convey("Looking up a name never entered fails with UnboundName", func() {
			_, err := b.Lookup('q')
			So(IsLookupError(err, ErrUnboundName), ShouldBeTrue)

			_, err = b.Render('q')
			So(IsLookupError(err, ErrUnboundName), ShouldBeTrue)
		})

		Convey("Defining a letter binds it", func() {
			So(b.DefineVariable('a', "b+c"), ShouldBeNil)
			n, err := b.Lookup('a')
			So(err, ShouldBeNil)
			So(n.String(), ShouldEqual, "(b)+(c)")

			Convey("And redefining it replaces the binding", func() {
				So(b.DefineFunction('a', "3d"), ShouldBeNil)
				e, _ := b.Entry('a')
				So(e.Letter, ShouldEqual, Function)
				s, err := b.Render('a')
				So(err, ShouldBeNil)
				So(s, ShouldEqual, "(3)(d)")
			})
		})

		Convey("A definition that does not parse leaves the bank unchanged", func() {
			err := b.DefineFunction('g', "2+")
			So(expr.IsParseError(err, expr.ErrEmptyOperand), ShouldBeTrue)
			g, _ := b.Entry('g')
			So(g.Defined(), ShouldBeFalse)
		})
	})

	Convey("Given a definition using special functions", t, func() {
		b, err := New('h', "sin(x)+logb(x)+ln(k)")
		So(err, ShouldBeNil)

		Convey("Only real references are entered", func() {
			So(b.Names(), ShouldResemble, []rune{'b', 'h', 'k'})
			e, _ := b.Entry('b')
			So(e.Letter, ShouldEqual, Variable)
		})
	})

	Convey("Given a definition that does not parse", t, func() {
		b, err := New('f', "(x")

		Convey("No bank is created", func() {
			So(b, ShouldBeNil)
			So(expr.IsParseError(err, expr.ErrUnbalancedBrackets), ShouldBeTrue)
		})
	})
}

func TestConcurrentDefineAndLookup(t *testing.T) {
	b, err := New('f', "a+1")
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if err := b.DefineVariable('a', "2"); err != nil {
					t.Error(err)
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.Lookup('a')
				b.Names()
			}
		}()
	}
	wg.Wait()
	if _, err := b.Lookup('a'); err != nil {
		t.Errorf("Lookup(a) after definitions: %v", err)
	}
}

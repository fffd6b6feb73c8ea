// Package text lays out plot annotations as vector outlines.
//
// Annotations use a small escape language for inline formatting:
//
//	#u  #d        superscript / subscript (nestable)
//	#fn #fr #fi #fs  switch to the normal, roman, italic or script face
//	#g<c>         Greek letter for the Latin key c (#ga is alpha)
//	##            a literal '#'
//	#[0x2192]     Unicode code point, hexadecimal or decimal
//
// Parse splits a string into Runs. A FontSet shapes the runs with the
// go-text HarfBuzz shaper and converts glyph outlines, read with
// golang.org/x/image/font/sfnt, into recording paths:
//
//	fonts, err := text.LoadFontSet(true)
//	if err != nil {
//		return err
//	}
//	block := fonts.Layout(text.Parse("y=x#u2"), 2.5)
//	rec.Fill(block.Path.Transform(recording.Translate(x, y)))
//
// The bundled faces are Go Regular and Go Smallcaps from
// golang.org/x/image/font/gofont, with Latin Modern Roman for the roman
// and italic fonts.
// A FontSet is safe for concurrent use.
package text

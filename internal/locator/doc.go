// Package locator finds the first occurrence of a literal marker in a
// document and cuts a window of surrounding text out of it.
//
// The window extends a fixed number of characters before the match and a
// fixed number after it, clamped to the document boundaries. Offsets are
// counted in Unicode code points rather than bytes, so a margin of 500
// always means 500 characters regardless of how the text is encoded.
//
// # Usage
//
//	loc, err := locator.New(`class="_2ph_ _a6-p"`)
//	if err != nil {
//	    return err
//	}
//	res := loc.Locate(content)
//	if !res.Found {
//	    fmt.Println(locator.NotFound)
//	    return nil
//	}
//	fmt.Println(res.Excerpt)
package locator

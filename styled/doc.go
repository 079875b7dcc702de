// Package styled provides a minimal attributed string: text plus a covering
// list of attribute runs.
//
// Replace rewrites a byte range in place. Runs outside the range keep their
// attributes, and the inserted text takes the attributes of the run it lands
// in, so abbreviating one word of a label never restyles its neighbours:
//
//	t := styled.New("Northwest ", styled.Attributes{"font": "bold"})
//	t.Append("Boulevard", styled.Attributes{"font": "regular"})
//	_ = t.Replace(10, 19, "Blvd")
//	// t.String() == "Northwest Blvd"; "Northwest " is still bold.
package styled

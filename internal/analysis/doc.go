// Package analysis compares continuous-canopy and row-canopy brightness
// temperature series.
//
//	cmp, err := analysis.Compare(res.Continuous, res.Row)
//	fmt.Println(cmp.RMSD)
package analysis

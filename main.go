// taxflor enriches GeoNature synthesis exports with structured fields
// extracted from the champs_additionnels column and plant taxonomy
// resolved against a TAXREF reference table.
package main

import "github.com/apinae/taxflor/cmd"

func main() {
	cmd.Execute()
}

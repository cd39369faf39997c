package inventory

// MovementNoSeed es la base de la numeración: el primer movimiento recibe MovementNoSeed+1.
const MovementNoSeed = 4200

// NextMovementNo devuelve el siguiente número a partir del máximo observado.
// found=false (o un máximo 0) significa que aún no existen movimientos.
// El caller debe serializar la lectura del máximo y el insert (ver TxRunner / LockNumbering).
func NextMovementNo(max int, found bool) int {
	if !found || max == 0 {
		return MovementNoSeed + 1
	}
	return max + 1
}

// SPDX-License-Identifier: MIT

package i18n

// Message keys. Each key is also the English rendering.
const (
	MsgStepTitle = "Step %d: %s"

	// inverse
	MsgInverseDetTitle        = "Find the Determinant"
	MsgInverseDetDesc         = "First, we calculate the determinant of the matrix. If it is 0, the inverse does not exist."
	MsgInverseCofactorTitle   = "Find the Cofactor Matrix"
	MsgInverseCofactorDesc    = "Calculate the cofactor for each element."
	MsgInverseAdjugateTitle   = "Find the Adjugate Matrix"
	MsgInverseAdjugateDesc    = "Transpose the cofactor matrix."
	MsgInverseScaleTitle      = "Multiply by 1/Determinant"
	MsgInverseScaleDesc       = "Multiply the adjugate matrix by 1 over the determinant."
	MsgInverseSingularComment = "The determinant is 0, so the matrix is singular and has no inverse."

	// determinant
	MsgDetMatrixTitle    = "Write the Matrix"
	MsgDetMatrixDesc     = "Start from the square matrix A."
	MsgDetRuleTitle      = "Apply the Determinant Rule"
	MsgDetRule1Desc      = "The determinant of a 1×1 matrix is its only entry."
	MsgDetRule2Desc      = "For a 2×2 matrix, det(A) = ad − bc."
	MsgDetRuleNDesc      = "Expand along the first row: multiply each entry by its cofactor and add the terms."
	MsgDetMinorTitle     = "Minor M1,%d"
	MsgDetMinorDesc      = "Delete row 1 and column %d. The minor has determinant %s."
	MsgDetResultTitle    = "Result"
	MsgDetResultDesc     = "The determinant of the matrix."
	MsgDetSingularNote   = "The determinant is 0: the matrix is singular."
	MsgDetInvertibleNote = "The determinant is not 0: the matrix is invertible."

	// rref
	MsgRREFInitialTitle = "Initial Matrix"
	MsgRREFInitialDesc  = "Write the matrix that will be reduced."
	MsgRREFOpsTitle     = "Row Operations"
	MsgRREFOpsDesc      = "Apply Gaussian-Jordan elimination to get reduced row echelon form."
	MsgRREFNoOpsDesc    = "No row operations are needed: the matrix is already in reduced row echelon form."
	MsgRREFOpStateDesc  = "Matrix after this operation."
	MsgRREFFinalTitle   = "Final Result"
	MsgRREFFinalDesc    = "The matrix is now in reduced row echelon form (RREF)."
	MsgRowOpSwap        = "Swap R%d and R%d"
	MsgRowOpScale       = "Multiply R%d by %s"
	MsgRowOpAdd         = "R%d = R%d + (%s) × R%d"

	// rank
	MsgRankReduceTitle = "Reduce to RREF"
	MsgRankReduceDesc  = "Row-reduce the matrix; elementary row operations do not change the rank."
	MsgRankCountTitle  = "Count Non-zero Rows"
	MsgRankCountDesc   = "The rank equals the number of non-zero rows (pivots) in the RREF: %d."

	// multiplication
	MsgMulDimsTitle   = "Verify Matrix Dimensions"
	MsgMulDimsDesc    = "Matrix A is %d×%d and Matrix B is %d×%d. For multiplication, the number of columns in A must equal the number of rows in B."
	MsgMulRuleTitle   = "Multiply Row by Column"
	MsgMulRuleDesc    = "Each element in the result matrix is the dot product of a row from the first matrix and a column from the second matrix."
	MsgMulResultTitle = "Calculate Result"
	MsgMulResultDesc  = "Compute each element of the resulting matrix."

	// system of equations
	MsgSysAugmentTitle   = "Write System as Augmented Matrix"
	MsgSysAugmentDesc    = "Convert the system of equations Ax = B into an augmented matrix [A | B]."
	MsgSysEliminateTitle = "Apply Gaussian Elimination"
	MsgSysEliminateDesc  = "Use row operations to convert the augmented matrix to reduced row echelon form (RREF)."
	MsgSysExtractTitle   = "Extract Solution"
	MsgSysUniqueDesc     = "Read the solution directly from the RREF matrix."
	MsgSysInfiniteDesc   = "The system has infinitely many solutions (free variables present)."
	MsgSysNoneDesc       = "The system has no solution (inconsistent)."
	MsgSolution          = "Solution: "
	MsgNoSolution        = "No solution exists"
	MsgFree              = "free"

	// cramer's rule
	MsgCramerDTitle       = "Calculate Determinant D"
	MsgCramerDDesc        = "Find the determinant of the coefficient matrix A."
	MsgCramerDResultTitle = "Determinant D Result"
	MsgCramerDResultDesc  = "The determinant of the coefficient matrix is %s."
	MsgCramerDiTitle      = "Calculate D%s"
	MsgCramerDiDesc       = "Replace column %d in matrix A with the constants vector to form D%s."
	MsgCramerDiResTitle   = "D%s Result"
	MsgCramerDiResDesc    = "The determinant D%s = %s."
	MsgCramerRuleTitle    = "Apply Cramer's Rule"
	MsgCramerRuleDesc     = "Use Cramer's rule: each variable equals its determinant divided by D."
	MsgCramerNoUniqueDesc = "D = 0, so Cramer's rule cannot produce a unique solution."

	// matrix power
	MsgPow0Title    = "Matrix to Power 0"
	MsgPow0Desc     = "Any matrix raised to the power of 0 equals the identity matrix."
	MsgPow1Title    = "Matrix to Power 1"
	MsgPow1Desc     = "Any matrix raised to the power of 1 equals itself."
	MsgPowInitTitle = "Initialize"
	MsgPowInitDesc  = "We need to calculate A^%d by multiplying A by itself %d times."
	MsgPowStepTitle = "Calculate A^%d"
	MsgPowStepDesc  = "Multiply A^%d by A to get A^%d."
)

var spanish = map[string]string{
	MsgStepTitle: "Paso %d: %s",

	MsgInverseDetTitle:        "Calcular el determinante",
	MsgInverseDetDesc:         "Primero calculamos el determinante de la matriz. Si es 0, la inversa no existe.",
	MsgInverseCofactorTitle:   "Calcular la matriz de cofactores",
	MsgInverseCofactorDesc:    "Calcula el cofactor de cada elemento.",
	MsgInverseAdjugateTitle:   "Calcular la matriz adjunta",
	MsgInverseAdjugateDesc:    "Transpón la matriz de cofactores.",
	MsgInverseScaleTitle:      "Multiplicar por 1/determinante",
	MsgInverseScaleDesc:       "Multiplica la matriz adjunta por 1 entre el determinante.",
	MsgInverseSingularComment: "El determinante es 0, por lo que la matriz es singular y no tiene inversa.",

	MsgDetMatrixTitle:    "Escribir la matriz",
	MsgDetMatrixDesc:     "Partimos de la matriz cuadrada A.",
	MsgDetRuleTitle:      "Aplicar la regla del determinante",
	MsgDetRule1Desc:      "El determinante de una matriz 1×1 es su único elemento.",
	MsgDetRule2Desc:      "Para una matriz 2×2, det(A) = ad − bc.",
	MsgDetRuleNDesc:      "Desarrolla por la primera fila: multiplica cada elemento por su cofactor y suma los términos.",
	MsgDetMinorTitle:     "Menor M1,%d",
	MsgDetMinorDesc:      "Elimina la fila 1 y la columna %d. El menor tiene determinante %s.",
	MsgDetResultTitle:    "Resultado",
	MsgDetResultDesc:     "El determinante de la matriz.",
	MsgDetSingularNote:   "El determinante es 0: la matriz es singular.",
	MsgDetInvertibleNote: "El determinante no es 0: la matriz es invertible.",

	MsgRREFInitialTitle: "Matriz inicial",
	MsgRREFInitialDesc:  "Escribe la matriz que se va a reducir.",
	MsgRREFOpsTitle:     "Operaciones de fila",
	MsgRREFOpsDesc:      "Aplica la eliminación de Gauss-Jordan para obtener la forma escalonada reducida.",
	MsgRREFNoOpsDesc:    "No hacen falta operaciones de fila: la matriz ya está en forma escalonada reducida.",
	MsgRREFOpStateDesc:  "Matriz después de esta operación.",
	MsgRREFFinalTitle:   "Resultado final",
	MsgRREFFinalDesc:    "La matriz está ahora en forma escalonada reducida por filas (RREF).",
	MsgRowOpSwap:        "Intercambiar F%d y F%d",
	MsgRowOpScale:       "Multiplicar F%d por %s",
	MsgRowOpAdd:         "F%d = F%d + (%s) × F%d",

	MsgRankReduceTitle: "Reducir a RREF",
	MsgRankReduceDesc:  "Reduce la matriz por filas; las operaciones elementales no cambian el rango.",
	MsgRankCountTitle:  "Contar filas no nulas",
	MsgRankCountDesc:   "El rango es el número de filas no nulas (pivotes) de la RREF: %d.",

	MsgMulDimsTitle:   "Verificar las dimensiones",
	MsgMulDimsDesc:    "La matriz A es %d×%d y la matriz B es %d×%d. Para multiplicar, el número de columnas de A debe ser igual al número de filas de B.",
	MsgMulRuleTitle:   "Multiplicar fila por columna",
	MsgMulRuleDesc:    "Cada elemento del resultado es el producto escalar de una fila de la primera matriz y una columna de la segunda.",
	MsgMulResultTitle: "Calcular el resultado",
	MsgMulResultDesc:  "Calcula cada elemento de la matriz resultante.",

	MsgSysAugmentTitle:   "Escribir el sistema como matriz aumentada",
	MsgSysAugmentDesc:    "Convierte el sistema de ecuaciones Ax = B en la matriz aumentada [A | B].",
	MsgSysEliminateTitle: "Aplicar eliminación gaussiana",
	MsgSysEliminateDesc:  "Usa operaciones de fila para llevar la matriz aumentada a forma escalonada reducida (RREF).",
	MsgSysExtractTitle:   "Obtener la solución",
	MsgSysUniqueDesc:     "Lee la solución directamente de la matriz RREF.",
	MsgSysInfiniteDesc:   "El sistema tiene infinitas soluciones (hay variables libres).",
	MsgSysNoneDesc:       "El sistema no tiene solución (es incompatible).",
	MsgSolution:          "Solución: ",
	MsgNoSolution:        "No existe solución",
	MsgFree:              "libre",

	MsgCramerDTitle:       "Calcular el determinante D",
	MsgCramerDDesc:        "Calcula el determinante de la matriz de coeficientes A.",
	MsgCramerDResultTitle: "Resultado del determinante D",
	MsgCramerDResultDesc:  "El determinante de la matriz de coeficientes es %s.",
	MsgCramerDiTitle:      "Calcular D%s",
	MsgCramerDiDesc:       "Sustituye la columna %d de A por el vector de constantes para formar D%s.",
	MsgCramerDiResTitle:   "Resultado de D%s",
	MsgCramerDiResDesc:    "El determinante D%s = %s.",
	MsgCramerRuleTitle:    "Aplicar la regla de Cramer",
	MsgCramerRuleDesc:     "Regla de Cramer: cada variable es su determinante dividido entre D.",
	MsgCramerNoUniqueDesc: "D = 0, así que la regla de Cramer no da una solución única.",

	MsgPow0Title:    "Matriz a la potencia 0",
	MsgPow0Desc:     "Toda matriz elevada a 0 es igual a la matriz identidad.",
	MsgPow1Title:    "Matriz a la potencia 1",
	MsgPow1Desc:     "Toda matriz elevada a 1 es igual a sí misma.",
	MsgPowInitTitle: "Inicializar",
	MsgPowInitDesc:  "Hay que calcular A^%d multiplicando A por sí misma %d veces.",
	MsgPowStepTitle: "Calcular A^%d",
	MsgPowStepDesc:  "Multiplica A^%d por A para obtener A^%d.",
}

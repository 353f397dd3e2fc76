package FE2D

import "fmt"

// InvalidResolutionError reports a non-positive element count along an axis.
type InvalidResolutionError struct {
	Res [2]int
}

func (e *InvalidResolutionError) Error() string {
	return fmt.Sprintf("invalid mesh resolution %dx%d: both components must be positive", e.Res[0], e.Res[1])
}

// InvalidDomainError reports domain bounds that fail min < max componentwise.
type InvalidDomainError struct {
	Min, Max [2]float64
}

func (e *InvalidDomainError) Error() string {
	return fmt.Sprintf("invalid domain [%g,%g]x[%g,%g]: min must be < max componentwise",
		e.Min[0], e.Max[0], e.Min[1], e.Max[1])
}

// DegenerateElementError reports a non-positive Jacobian determinant at a
// quadrature point, meaning the element is inverted or has zero area.
type DegenerateElementError struct {
	Element int
	Point   int
	DetJ    float64
}

func (e *DegenerateElementError) Error() string {
	return fmt.Sprintf("degenerate element %d: |J| = %g at quadrature point %d", e.Element, e.DetJ, e.Point)
}

// UnknownDofError reports a DOF index outside the target field's index space.
type UnknownDofError struct {
	Dof  int
	Size int
}

func (e *UnknownDofError) Error() string {
	return fmt.Sprintf("unknown DOF index %d: field has %d DOFs", e.Dof, e.Size)
}

// SingularSystemError reports a matrix detected singular or not positive
// definite during the solve.
type SingularSystemError struct {
	Dof    int
	Reason string
}

func (e *SingularSystemError) Error() string {
	if e.Dof >= 0 {
		return fmt.Sprintf("singular system: %s at DOF %d", e.Reason, e.Dof)
	}
	return fmt.Sprintf("singular system: %s", e.Reason)
}

// ConvergenceError reports an iterative solve that exhausted its iteration
// budget before reaching tolerance.
type ConvergenceError struct {
	Iterations int
	Residual   float64
	Target     float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("solver failed to converge after %d iterations: residual %g, target %g",
		e.Iterations, e.Residual, e.Target)
}

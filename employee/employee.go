// Package employee holds the demonstration record type and its sample dataset.
package employee

import "fmt"

// Employee is a value type; copies never alias.
type Employee struct {
	Name     string
	Location string
	Age      int
	Salary   int
}

func New(name, location string, age, salary int) Employee {
	return Employee{Name: name, Location: location, Age: age, Salary: salary}
}

func (e Employee) String() string {
	return fmt.Sprintf("Employee{name=%s, location=%s, age=%d, salary=%d}", e.Name, e.Location, e.Age, e.Salary)
}

// accessors, for method values in pipelines

func Name(e Employee) string     { return e.Name }
func Location(e Employee) string { return e.Location }
func Age(e Employee) int         { return e.Age }
func Salary(e Employee) int      { return e.Salary }

// Sample returns a fresh copy of the ten-employee demonstration dataset.
func Sample() []Employee {
	return []Employee{
		New("Empleado1", "Medellín", 30, 1000),
		New("Empleado2", "Bogotá", 23, 800),
		New("Empleado3", "Medellín", 28, 800),
		New("Empleado4", "Bogotá", 31, 1000),
		New("Empleado5", "Bogotá", 24, 900),
		New("Empleado6", "Medellín", 28, 1000),
		New("Empleado7", "Panamá", 45, 1200),
		New("Empleado8", "Bogotá", 38, 2000),
		New("Empleado9", "México", 36, 2500),
		New("Empleado0", "Medellín", 25, 800),
	}
}

package localstore

import (
	"time"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// SeedEmployees devuelve el fixture inicial del directorio (7 registros de
// ejemplo): un despliegue fresco nunca arranca vacío. Los timestamps se
// estampan al sembrar; los IDs del fixture son fijos para que el dataset sea
// reconocible.
func SeedEmployees() []entity.Employee {
	now := time.Now()
	stamp := func(e entity.Employee) entity.Employee {
		e.CreatedAt = now
		e.UpdatedAt = now
		return e
	}
	return []entity.Employee{
		stamp(entity.Employee{
			ID: "1", FullName: "John Doe", Gender: entity.GenderMale,
			DateOfBirth: "1990-05-15", ProfileImage: "https://i.pravatar.cc/150?img=12",
			State: "California", IsActive: true,
		}),
		stamp(entity.Employee{
			ID: "2", FullName: "Jane Smith", Gender: entity.GenderFemale,
			DateOfBirth: "1988-08-22", ProfileImage: "https://i.pravatar.cc/150?img=5",
			State: "New York", IsActive: true,
		}),
		stamp(entity.Employee{
			ID: "3", FullName: "Michael Johnson", Gender: entity.GenderMale,
			DateOfBirth: "1992-03-10", ProfileImage: "https://i.pravatar.cc/150?img=33",
			State: "Texas", IsActive: false,
		}),
		stamp(entity.Employee{
			ID: "4", FullName: "Sarah Williams", Gender: entity.GenderFemale,
			DateOfBirth: "1995-11-30", ProfileImage: "https://i.pravatar.cc/150?img=9",
			State: "Florida", IsActive: true,
		}),
		stamp(entity.Employee{
			ID: "5", FullName: "David Brown", Gender: entity.GenderMale,
			DateOfBirth: "1987-07-18", ProfileImage: "https://i.pravatar.cc/150?img=51",
			State: "Illinois", IsActive: true,
		}),
		stamp(entity.Employee{
			ID: "6", FullName: "Emily Davis", Gender: entity.GenderFemale,
			DateOfBirth: "1993-09-25", ProfileImage: "https://i.pravatar.cc/150?img=20",
			State: "Washington", IsActive: false,
		}),
		stamp(entity.Employee{
			ID: "7", FullName: "Alex Martinez", Gender: entity.GenderOther,
			DateOfBirth: "1991-12-05", ProfileImage: "https://i.pravatar.cc/150?img=68",
			State: "Colorado", IsActive: true,
		}),
	}
}

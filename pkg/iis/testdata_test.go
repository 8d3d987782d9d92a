package iis

const sampleAuditories = `[
  {
    "id": 1,
    "name": "101",
    "note": null,
    "capacity": 120,
    "auditoryType": {"id": 1, "name": "лекционная", "abbrev": "лк"},
    "buildingNumber": {"id": 1, "name": "1 к."},
    "department": {"idDepartment": 20, "abbrev": "ВМ", "name": "Высшей математики", "nameAndAbbrev": "Высшей математики (ВМ)"}
  },
  {
    "id": 2,
    "name": "505",
    "note": "ремонт",
    "auditoryType": {"id": 3, "name": "лабораторная", "abbrev": "лб"},
    "buildingNumber": {"id": 5, "name": "5 к."}
  }
]`

const sampleDepartments = `[{"id": 20, "name": "Высшей математики", "abbrev": "ВМ"}]`

const sampleFaculties = `[{"id": 20017, "name": "Факультет компьютерных систем и сетей", "abbrev": "ФКСиС"}]`

const sampleEmployees = `[
  {
    "id": 500434,
    "firstName": "Сергей",
    "lastName": "Нестеренков",
    "middleName": "Николаевич",
    "degree": "к.т.н.",
    "rank": null,
    "photoLink": "https://iis.bsuir.by/api/v1/employees/photo/500434",
    "calendarId": "bsuir.by_abc@group.calendar.google.com",
    "academicDepartment": ["ПОИТ", "ФКСиС"],
    "urlId": "s-nesterenkov",
    "fio": "Нестеренков С. Н."
  }
]`

const sampleGroups = `[
  {
    "id": 23480,
    "name": "155841",
    "facultyId": 20017,
    "facultyName": "ФКСиС",
    "specialityDepartmentEducationFormId": 20040,
    "specialityName": "Программное обеспечение информационных технологий",
    "course": 3,
    "calendarId": "bsuir.by_155841@group.calendar.google.com"
  },
  {
    "id": 23481,
    "name": "155842",
    "facultyId": 20017,
    "facultyName": "ФКСиС",
    "specialityDepartmentEducationFormId": null,
    "specialityName": "ПОИТ",
    "course": null
  }
]`

const sampleSpecialities = `[
  {
    "id": 20040,
    "name": "Программное обеспечение информационных технологий",
    "abbrev": "ПОИТ",
    "educationForm": {"id": 1, "name": "дневная"},
    "facultyId": 20017,
    "code": "1-40 01 01"
  }
]`

const sampleAnnouncements = `[
  {
    "id": 9001,
    "employee": "Нестеренков С. Н.",
    "content": "Консультация переносится",
    "date": "19.10.2026",
    "employeeDepartments": ["ПОИТ"],
    "studentGroups": [{"id": 23480, "name": "155841"}]
  }
]`

const sampleLastUpdate = `{"lastUpdateDate": "17.10.2026"}`

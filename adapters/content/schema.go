package content

// documentSchema describes the portfolio content file. Only the fields the
// API derives values from are required.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["personalInfo", "experience"],
  "properties": {
    "personalInfo": {
      "type": "object",
      "required": ["name", "email"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "title": {"type": "string"},
        "bio": {"type": "string"},
        "about": {"type": "string"},
        "avatar": {"type": "string"},
        "email": {"type": "string"},
        "location": {"type": "string"},
        "phone": {"type": "string"},
        "socialLinks": {
          "type": "object",
          "properties": {
            "github": {"type": "string"},
            "linkedin": {"type": "string"},
            "twitter": {"type": "string"}
          }
        }
      }
    },
    "careerStartDate": {"type": "string"},
    "statistics": {
      "type": "object",
      "properties": {
        "yearsExperience": {"type": "integer", "minimum": 0},
        "projectsDelivered": {"type": "integer", "minimum": 0},
        "technologiesMastered": {"type": "integer", "minimum": 0},
        "codeCommits": {"type": "integer", "minimum": 0}
      }
    },
    "skills": {
      "type": "object",
      "properties": {
        "frontend": {"type": "array", "items": {"type": "string"}},
        "backend": {"type": "array", "items": {"type": "string"}},
        "tools": {"type": "array", "items": {"type": "string"}}
      }
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["company", "position", "period"],
        "properties": {
          "company": {"type": "string", "minLength": 1},
          "position": {"type": "string"},
          "period": {"type": "string"},
          "description": {"type": "string"},
          "location": {"type": "string"},
          "workType": {"type": "string"}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["institution", "degree"],
        "properties": {
          "institution": {"type": "string"},
          "degree": {"type": "string"},
          "period": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "slug": {"type": "string"},
          "description": {"type": "string"},
          "technologies": {"type": "array", "items": {"type": "string"}},
          "image": {"type": "string"},
          "liveUrl": {"type": "string"},
          "githubUrl": {"type": "string"}
        }
      }
    }
  }
}`

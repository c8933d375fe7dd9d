// Package templates is the single source of truth for generated file
// content. The registry maps relative output paths to string payloads in
// the order they are written; it is distinct from the files step's
// empty-file list, which may be a superset.
package templates

import (
	"bytes"
	"strings"
	"text/template"
)

// Entry pairs a relative output path with its content payload. EnvFile is
// the only payload carrying substitution placeholders; everything else is
// written verbatim.
type Entry struct {
	Path    string
	Content string
}

// EnvFilePath is the registry entry that receives configuration
// substitution before writing.
const EnvFilePath = ".env"

// EnvFile is rendered with EnvData before writing.
const EnvFile = `# IMPORTANT: Change these values before deployment

# Project
TITLE="{{.Title}}"
DESCRIPTION="{{.Description}}"
VERSION="{{.Version}}"

# Debugging
DEBUG=True

# Server
PORT=8000
HOST="0.0.0.0"

# Database
DB_USER="{{.DBUser}}"
DB_PASS="{{.DBPass}}"
DB_HOST="{{.DBHost}}"
DB_PORT={{.DBPort}}
DB_NAME="{{.DBName}}"
DB_TYPE="{{.DBType}}"
`

// EnvData carries the values substituted into EnvFile.
type EnvData struct {
	Title       string
	Description string
	Version     string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBType      string
}

// RenderEnvFile substitutes data into the .env payload.
func RenderEnvFile(data EnvData) (string, error) {
	tmpl, err := template.New(EnvFilePath).Parse(EnvFile)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const gitignore = `# Environments
.venv
env/
venv/

# Python
__pycache__/
*.py[cod]
*.egg-info/
.pytest_cache/

# Project
.env
*.log
`

const runFile = `import uvicorn


def main() -> None:
    uvicorn.run("app.main:app", host="0.0.0.0", port=8000)


if __name__ == "__main__":
    main()
`

const devScript = `import uvicorn


def main() -> None:
    uvicorn.run("app.main:app", host="127.0.0.1", port=8000, reload=True)


if __name__ == "__main__":
    main()
`

const prodScript = `import uvicorn


def main() -> None:
    uvicorn.run("app.main:app", host="0.0.0.0", port=8000, workers=4)


if __name__ == "__main__":
    main()
`

const mainFile = `from fastapi import FastAPI

from app.api.common import router as common_router
from app.api.v1.hero import router as hero_router
from app.core.config import settings
from app.core.lifespan import lifespan


def create_app() -> FastAPI:
    """Create and wire the FastAPI application."""
    app = FastAPI(
        title=settings.TITLE,
        description=settings.DESCRIPTION,
        version=settings.VERSION,
        lifespan=lifespan,
    )
    app.include_router(common_router)
    app.include_router(hero_router, prefix="/api/v1")
    return app


app = create_app()
`

const coreConfig = `from pydantic_settings import BaseSettings, SettingsConfigDict


class Settings(BaseSettings):
    model_config = SettingsConfigDict(env_file=".env", extra="ignore")

    TITLE: str = "FastAPI Project"
    DESCRIPTION: str = ""
    VERSION: str = "0.1.0"
    DEBUG: bool = False
    HOST: str = "0.0.0.0"
    PORT: int = 8000

    DB_USER: str = ""
    DB_PASS: str = ""
    DB_HOST: str = ""
    DB_PORT: str = ""
    DB_NAME: str = ""
    DB_TYPE: str = "postgres"

    @property
    def database_url(self) -> str:
        drivers = {
            "postgres": "postgresql+asyncpg",
            "mysql": "mysql+aiomysql",
            "sqlite": "sqlite+aiosqlite",
        }
        driver = drivers.get(self.DB_TYPE, "postgresql+asyncpg")
        if self.DB_TYPE == "sqlite":
            return f"{driver}:///./{self.DB_NAME}.db"
        return (
            f"{driver}://{self.DB_USER}:{self.DB_PASS}"
            f"@{self.DB_HOST}:{self.DB_PORT}/{self.DB_NAME}"
        )


settings = Settings()
`

const coreErrors = `class AppError(Exception):
    """Base class for application-level failures."""

    status_code = 500
    detail = "Internal server error"


class NotFoundError(AppError):
    status_code = 404
    detail = "Resource not found"


class ConflictError(AppError):
    status_code = 409
    detail = "Resource already exists"
`

const coreExceptions = `from fastapi import FastAPI, Request
from fastapi.responses import JSONResponse

from app.core.errors import AppError


def register_exception_handlers(app: FastAPI) -> None:
    @app.exception_handler(AppError)
    async def app_error_handler(request: Request, exc: AppError) -> JSONResponse:
        return JSONResponse(
            status_code=exc.status_code,
            content={"detail": exc.detail},
        )
`

const coreLifespan = `from contextlib import asynccontextmanager

from fastapi import FastAPI

from app.core.logger import logger


@asynccontextmanager
async def lifespan(app: FastAPI):
    logger.info("Application starting up")
    yield
    logger.info("Application shutting down")
`

const coreLogger = `import logging
import sys

logger = logging.getLogger("app")
logger.setLevel(logging.INFO)

_handler = logging.StreamHandler(sys.stdout)
_handler.setFormatter(
    logging.Formatter("%(asctime)s | %(levelname)s | %(name)s | %(message)s")
)
logger.addHandler(_handler)
`

const coreResponseHelper = `from typing import Any

from app.core.responses import APIResponse


def success_response(data: Any = None, message: str = "OK") -> APIResponse:
    return APIResponse(success=True, message=message, data=data)


def error_response(message: str) -> APIResponse:
    return APIResponse(success=False, message=message, data=None)
`

const coreResponses = `from typing import Any, Optional

from pydantic import BaseModel


class APIResponse(BaseModel):
    success: bool
    message: str
    data: Optional[Any] = None
`

const apiCommon = `from fastapi import APIRouter

router = APIRouter(tags=["common"])


@router.get("/health")
async def health_check() -> dict:
    return {"status": "ok"}
`

const modelsCommon = `from datetime import datetime

from sqlalchemy import DateTime, func
from sqlalchemy.orm import DeclarativeBase, Mapped, mapped_column


class Base(DeclarativeBase):
    pass


class TimestampMixin:
    created_at: Mapped[datetime] = mapped_column(
        DateTime(timezone=True), server_default=func.now()
    )
    updated_at: Mapped[datetime] = mapped_column(
        DateTime(timezone=True), server_default=func.now(), onupdate=func.now()
    )
`

const schemasCommon = `from pydantic import BaseModel, ConfigDict


class ORMModel(BaseModel):
    model_config = ConfigDict(from_attributes=True)
`

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Welcome</title>
</head>
<body>
    <h1>It works!</h1>
    <p>Your FastAPI project is up and running.</p>
</body>
</html>
`

// Resource templates keep the per-domain stubs in one place: the registry
// renders them once for the starter "hero" resource, and the add command
// renders them again for user-named resources.
var resourceTemplates = map[string]string{
	"model": `from sqlalchemy.orm import Mapped, mapped_column

from app.models.common import Base, TimestampMixin


class {{.Pascal}}(Base, TimestampMixin):
    __tablename__ = "{{.Plural}}"

    id: Mapped[int] = mapped_column(primary_key=True)
    name: Mapped[str] = mapped_column(index=True)
`,
	"schema": `from typing import Optional

from app.schemas.common import ORMModel


class {{.Pascal}}Create(ORMModel):
    name: str


class {{.Pascal}}Update(ORMModel):
    name: Optional[str] = None


class {{.Pascal}}Read(ORMModel):
    id: int
    name: str
`,
	"repository": `from typing import Optional, Sequence

from sqlalchemy import select
from sqlalchemy.ext.asyncio import AsyncSession

from app.models.{{.Snake}} import {{.Pascal}}


class {{.Pascal}}Repository:
    def __init__(self, session: AsyncSession) -> None:
        self.session = session

    async def get(self, {{.Snake}}_id: int) -> Optional[{{.Pascal}}]:
        return await self.session.get({{.Pascal}}, {{.Snake}}_id)

    async def list(self) -> Sequence[{{.Pascal}}]:
        result = await self.session.execute(select({{.Pascal}}))
        return result.scalars().all()

    async def add(self, obj: {{.Pascal}}) -> {{.Pascal}}:
        self.session.add(obj)
        await self.session.flush()
        return obj
`,
	"service": `from sqlalchemy.ext.asyncio import AsyncSession

from app.core.errors import NotFoundError
from app.models.{{.Snake}} import {{.Pascal}}
from app.repositories.{{.Snake}} import {{.Pascal}}Repository
from app.schemas.{{.Snake}} import {{.Pascal}}Create, {{.Pascal}}Read


class {{.Pascal}}Service:
    def __init__(self, session: AsyncSession) -> None:
        self.repository = {{.Pascal}}Repository(session)

    async def get(self, {{.Snake}}_id: int) -> {{.Pascal}}Read:
        obj = await self.repository.get({{.Snake}}_id)
        if obj is None:
            raise NotFoundError()
        return {{.Pascal}}Read.model_validate(obj)

    async def create(self, data: {{.Pascal}}Create) -> {{.Pascal}}Read:
        obj = await self.repository.add({{.Pascal}}(**data.model_dump()))
        return {{.Pascal}}Read.model_validate(obj)
`,
	"route": `from fastapi import APIRouter, Depends
from sqlalchemy.ext.asyncio import AsyncSession

from app.database import get_session
from app.schemas.{{.Snake}} import {{.Pascal}}Create, {{.Pascal}}Read
from app.services.{{.Snake}} import {{.Pascal}}Service

router = APIRouter(prefix="/{{.Plural}}", tags=["{{.Plural}}"])


@router.get("/{{"{"}}{{.Snake}}_id{{"}"}}", response_model={{.Pascal}}Read)
async def get_{{.Snake}}(
    {{.Snake}}_id: int, session: AsyncSession = Depends(get_session)
) -> {{.Pascal}}Read:
    return await {{.Pascal}}Service(session).get({{.Snake}}_id)


@router.post("/", response_model={{.Pascal}}Read, status_code=201)
async def create_{{.Snake}}(
    data: {{.Pascal}}Create, session: AsyncSession = Depends(get_session)
) -> {{.Pascal}}Read:
    return await {{.Pascal}}Service(session).create(data)
`,
}

// ResourceData feeds the resource templates.
type ResourceData struct {
	Snake  string
	Pascal string
	Plural string
}

// NewResourceData derives the naming forms used by the resource templates
// from a snake_case resource name.
func NewResourceData(name string) ResourceData {
	return ResourceData{
		Snake:  name,
		Pascal: pascal(name),
		Plural: plural(name),
	}
}

// ResourceKinds lists the stub kinds generated per resource, with their
// output locations.
var ResourceKinds = []struct {
	Kind string
	Dir  string
}{
	{"model", "app/models"},
	{"schema", "app/schemas"},
	{"repository", "app/repositories"},
	{"service", "app/services"},
	{"route", "app/api/v1"},
}

// RenderResource renders one resource stub kind for the given data.
func RenderResource(kind string, data ResourceData) (string, error) {
	tmpl, err := template.New(kind).Parse(resourceTemplates[kind])
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func pascal(s string) string {
	parts := strings.Split(s, "_")
	for i := range parts {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}

func plural(s string) string {
	switch {
	case strings.HasSuffix(s, "s"), strings.HasSuffix(s, "o"):
		return s + "es"
	case strings.HasSuffix(s, "y"):
		return s[:len(s)-1] + "ies"
	default:
		return s + "s"
	}
}

func mustRenderResource(kind string, data ResourceData) string {
	out, err := RenderResource(kind, data)
	if err != nil {
		panic(err)
	}
	return out
}

var hero = NewResourceData("hero")

// Registry is the ordered list of files that carry generated content. It is
// built once at package init and never mutated afterwards.
var Registry = []Entry{
	{EnvFilePath, EnvFile},
	{".gitignore", gitignore},
	{"run.py", runFile},
	{"scripts/dev.py", devScript},
	{"scripts/prod.py", prodScript},
	{"app/main.py", mainFile},
	{"app/core/config.py", coreConfig},
	{"app/core/errors.py", coreErrors},
	{"app/core/exceptions.py", coreExceptions},
	{"app/core/lifespan.py", coreLifespan},
	{"app/core/logger.py", coreLogger},
	{"app/core/response_helper.py", coreResponseHelper},
	{"app/core/responses.py", coreResponses},
	{"app/api/common.py", apiCommon},
	{"app/api/v1/hero.py", mustRenderResource("route", hero)},
	{"app/models/common.py", modelsCommon},
	{"app/models/hero.py", mustRenderResource("model", hero)},
	{"app/schemas/common.py", schemasCommon},
	{"app/schemas/hero.py", mustRenderResource("schema", hero)},
	{"app/repositories/hero.py", mustRenderResource("repository", hero)},
	{"app/services/hero.py", mustRenderResource("service", hero)},
	{"app/templates/index.html", indexHTML},
}

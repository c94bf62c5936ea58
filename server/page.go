package server

const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Excel 文件拆分工具</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; }
label { display: block; margin: .6em 0 .2em; }
table { border-collapse: collapse; margin: 1em 0; font-size: 13px; }
td { border: 1px solid #ccc; padding: 2px 6px; }
</style>
</head>
<body>
<h1>Excel 文件拆分工具</h1>
<form id="form" method="post" action="/api/split" enctype="multipart/form-data">
  <label>选择 Excel 文件</label>
  <input type="file" name="file" accept=".xlsx" required>
  <button type="button" id="load">预览</button>

  <label>选择工作表</label>
  <select name="sheet" id="sheet"></select>

  <div id="preview"></div>

  <label>表头起始行 (0 开始)</label>
  <input type="number" name="header_start" min="0" value="0">
  <label>表头结束行 (0 开始)</label>
  <input type="number" name="header_end" min="0" value="1">

  <label>选择拆分列</label>
  <select name="split_column" id="split_column"></select>
  <label>选择文件命名列</label>
  <select name="name_column" id="name_column"></select>

  <label><input type="checkbox" name="unique_names" value="1"> 文件名重复时自动编号</label>
  <label><input type="checkbox" name="pinyin_names" value="1"> 文件名转换为拼音</label>

  <p><button type="submit">拆分并下载</button></p>
</form>
<script>
const form = document.getElementById('form');

function fillColumns(columns) {
  for (const id of ['split_column', 'name_column']) {
    const sel = document.getElementById(id);
    sel.innerHTML = '';
    for (const c of columns || []) sel.add(new Option(c, c));
  }
}

async function loadPreview() {
  const data = new FormData(form);
  const resp = await fetch('/api/preview', { method: 'POST', body: data });
  if (!resp.ok) { alert(await resp.text()); return; }
  const p = await resp.json();

  const sheet = document.getElementById('sheet');
  const current = sheet.value;
  sheet.innerHTML = '';
  for (const s of p.sheets) sheet.add(new Option(s, s, false, s === (current || p.sheet)));

  const rows = (p.rows || []).map(r => '<tr>' + r.map(c => '<td>' + c.replace(/</g, '&lt;') + '</td>').join('') + '</tr>');
  document.getElementById('preview').innerHTML = '<table>' + rows.join('') + '</table>';
  fillColumns(p.columns);
}

document.getElementById('load').onclick = loadPreview;
document.getElementById('sheet').onchange = loadPreview;
form.elements['header_end'].onchange = loadPreview;
</script>
</body>
</html>
`
